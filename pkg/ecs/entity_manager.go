package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 查询结果按实体ID升序返回，即按创建顺序返回。
// 已标记删除的实体立即从所有查询中消失，组件在 RemoveMarkedEntities 时才真正释放。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 已标记删除的实体集合（用于去重与存活判断）
	marked map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 返回：
//   - bool: 本次调用是否真正标记了实体；实体不存在或已标记时返回 false
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if !em.IsAlive(id) {
		return false
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
	return true
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, isMarked := em.marked[id]
	return !isMarked
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// Clear 删除所有实体（会话重置时使用），ID 计数不回退
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.marked = make(map[EntityID]struct{})
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount 返回存活实体数量（不含已标记删除的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.components) - len(em.marked)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的存活实体ID列表，按ID升序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if _, isMarked := em.marked[id]; isMarked {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sortIDs(result)
	return result
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
