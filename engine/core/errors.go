package core

import "fmt"

// ContextCreationError indicates that the windowing surface or the OpenGL
// context could not be created. Nothing has been allocated on the GPU when
// this is returned.
type ContextCreationError struct {
	Reason string
	Err    error
}

func (e *ContextCreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("context creation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("context creation failed: %s", e.Reason)
}

func (e *ContextCreationError) Unwrap() error {
	return e.Err
}

// ShaderCompileError carries the driver info log for a stage that failed to
// compile. Shader source is fixed configuration data, so this is never
// retried.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader:\n%s", e.Stage, e.Log)
}

// ShaderLinkError carries the driver info log for a program whose stages
// could not be linked, e.g. mismatched varyings between vertex output and
// fragment input.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link shader program:\n%s", e.Log)
}

// ResourceAllocationError indicates that the driver rejected a buffer or
// texture upload. Code holds the raw GL error code.
type ResourceAllocationError struct {
	Resource string
	Code     uint32
}

func (e *ResourceAllocationError) Error() string {
	return fmt.Sprintf("failed to allocate %s (gl error 0x%04x)", e.Resource, e.Code)
}
