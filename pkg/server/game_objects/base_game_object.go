package game_objects

import (
	"slingshot-server/pkg/server/constants"
)

// GameObject is an interface that all game objects must implement
type GameObject interface {
	// GetID returns the unique identifier of the game object
	GetID() string

	// GetObjectType returns the type of the game object
	GetObjectType() string

	// GetState returns a copy of the object's state keyed by the constants.State* keys
	GetState() map[string]interface{}
}

// BaseGameObject provides the identity part of the GameObject interface
type BaseGameObject struct {
	ID         string
	ObjectType string
}

// NewBaseGameObject creates a new BaseGameObject
func NewBaseGameObject(id string, objectType string) *BaseGameObject {
	return &BaseGameObject{
		ID:         id,
		ObjectType: objectType,
	}
}

// GetID returns the unique identifier of the game object
func (g *BaseGameObject) GetID() string {
	return g.ID
}

// GetObjectType returns the type of the game object
func (g *BaseGameObject) GetObjectType() string {
	return g.ObjectType
}

// GetState returns the identity keys shared by every object
func (g *BaseGameObject) GetState() map[string]interface{} {
	return map[string]interface{}{
		constants.StateID:         g.ID,
		constants.StateObjectType: g.ObjectType,
	}
}
