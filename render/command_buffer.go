// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Command buffer errors.
var (
	// ErrSampleNotOpen is returned by EndSample when no scope is open.
	ErrSampleNotOpen = errors.New("render: no open sample scope")

	// ErrSampleMismatch is returned by EndSample when the name does not
	// match the innermost open scope.
	ErrSampleMismatch = errors.New("render: sample scope mismatch")
)

// CommandBuffer is a named, append-only sequence of GPU commands.
//
// A CommandBuffer is handed to Context.ExecuteCommandBuffer and then cleared
// for reuse, within the same render call or the next frame. Sample scopes
// survive Clear: a scope opened and flushed in one execution may be closed
// in a later one.
//
// The CommandBuffer is not safe for concurrent use.
type CommandBuffer struct {
	name     string
	commands []Command
	samples  []string
}

// NewCommandBuffer creates an empty command buffer.
func NewCommandBuffer(name string) *CommandBuffer {
	return &CommandBuffer{
		name:     name,
		commands: make([]Command, 0, 16),
		samples:  make([]string, 0, 4),
	}
}

// Name returns the buffer name.
func (b *CommandBuffer) Name() string { return b.name }

// Len returns the number of buffered commands.
func (b *CommandBuffer) Len() int { return len(b.commands) }

// Commands returns the buffered commands in append order.
// The slice is only valid until the next Clear or Reset.
func (b *CommandBuffer) Commands() []Command { return b.commands }

// OpenSamples returns the number of unclosed sample scopes.
func (b *CommandBuffer) OpenSamples() int { return len(b.samples) }

// ClearRenderTarget records a clear of the current target.
// Depth is cleared to 1 (far plane).
func (b *CommandBuffer) ClearRenderTarget(clearDepth, clearColor bool, c gputypes.Color) {
	b.commands = append(b.commands, ClearRenderTargetCommand{
		ClearDepth: clearDepth,
		ClearColor: clearColor,
		Color:      c,
		Depth:      1,
	})
}

// BeginSample opens a named profiling scope.
func (b *CommandBuffer) BeginSample(name string) {
	b.samples = append(b.samples, name)
	b.commands = append(b.commands, BeginSampleCommand{Name: name})
}

// EndSample closes the innermost profiling scope, which must be named name.
// Nothing is recorded on error.
func (b *CommandBuffer) EndSample(name string) error {
	n := len(b.samples)
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrSampleNotOpen, name)
	}
	if open := b.samples[n-1]; open != name {
		return fmt.Errorf("%w: closing %q, innermost is %q", ErrSampleMismatch, name, open)
	}
	b.samples = b.samples[:n-1]
	b.commands = append(b.commands, EndSampleCommand{Name: name})
	return nil
}

// DrawRendererList records a draw of list.
func (b *CommandBuffer) DrawRendererList(list RendererList) {
	b.commands = append(b.commands, DrawRendererListCommand{List: list})
}

// Clear removes buffered commands. Open sample scopes are kept.
func (b *CommandBuffer) Clear() {
	clear(b.commands)
	b.commands = b.commands[:0]
}

// Reset removes buffered commands and forgets open sample scopes.
func (b *CommandBuffer) Reset() {
	b.Clear()
	b.samples = b.samples[:0]
}
