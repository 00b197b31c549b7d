package types

// ResourceInfo describes one node of a gateway's resource tree.
type ResourceInfo struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parent_id,omitempty"`
	Path     string   `json:"path"`
	PathPart string   `json:"path_part,omitempty"`
	Methods  []string `json:"methods,omitempty"`
}
