package main

// PeerView is the JSON shape of one entry in the /debug/peers
// response, grounded on the teacher's api/types/v1.Dialog shape.
type PeerView struct {
	Peer            string `json:"peer"`
	ConnectionState string `json:"connection_state"`
	AudioState      string `json:"audio_state"`
	TransitionCount uint64 `json:"transition_count"`
	QueueDepth      int    `json:"queue_depth"`
	Dump            string `json:"dump"`
}

// StatsView is the JSON shape of the /debug/stats response.
type StatsView struct {
	ActivePeers     int    `json:"active_peers"`
	EventsPublished uint64 `json:"events_published"`
	EventsDelivered uint64 `json:"events_delivered"`
}
