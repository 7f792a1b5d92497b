package server

import "slingshot-server/pkg/server/simulation"

type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

type SessionStateResponse struct {
	SessionID    string                            `json:"sessionId"`
	SessionCode  string                            `json:"sessionCode"`
	State        *simulation.Snapshot              `json:"state"`
	ObjectStates map[string]map[string]interface{} `json:"objectStates"` // Map of ObjectID -> ObjectState
}
