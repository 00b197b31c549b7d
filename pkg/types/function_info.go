package types

// FunctionInfo holds the subset of a Lambda function configuration surfaced
// by the CLI.
type FunctionInfo struct {
	FunctionName string `json:"function_name"`
	FunctionArn  string `json:"function_arn"`
	Runtime      string `json:"runtime,omitempty"`
	Handler      string `json:"handler,omitempty"`
	Description  string `json:"description,omitempty"`
	MemorySize   int32  `json:"memory_size,omitempty"`
	Timeout      int32  `json:"timeout,omitempty"`
	State        string `json:"state,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}
