package dto

// HealthResponse reports liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ServiceInfoResponse is the root endpoint payload.
type ServiceInfoResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// CacheStatsResponse mirrors the internal cache snapshot.
type CacheStatsResponse struct {
	PostsListSize int `json:"posts_list_size"`
	PostCacheSize int `json:"post_cache_size"`
	PostCacheMax  int `json:"post_cache_max"`
	SlugMapSize   int `json:"slug_map_size"`
	TTLSeconds    int `json:"ttl_seconds"`
}

// MessageResponse is a generic response for success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code,omitempty"`
}
