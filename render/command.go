// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClearRenderTarget CommandType = iota // Clear color and/or depth
	CmdBeginSample                          // Open a profiling scope
	CmdEndSample                            // Close a profiling scope
	CmdDrawRendererList                     // Draw a renderer list
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClearRenderTarget: "ClearRenderTarget",
	CmdBeginSample:       "BeginSample",
	CmdEndSample:         "EndSample",
	CmdDrawRendererList:  "DrawRendererList",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every command a CommandBuffer records.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearRenderTargetCommand clears the current camera target.
type ClearRenderTargetCommand struct {
	ClearDepth bool
	ClearColor bool

	// Color is the clear color, used when ClearColor is set.
	Color gputypes.Color

	// Depth is the depth clear value, used when ClearDepth is set.
	Depth float32
}

// Type implements Command.
func (ClearRenderTargetCommand) Type() CommandType { return CmdClearRenderTarget }

// ColorLoadOp returns the load op of the color attachment.
func (c ClearRenderTargetCommand) ColorLoadOp() gputypes.LoadOp {
	if c.ClearColor {
		return gputypes.LoadOpClear
	}
	return gputypes.LoadOpLoad
}

// DepthLoadOp returns the load op of the depth attachment.
func (c ClearRenderTargetCommand) DepthLoadOp() gputypes.LoadOp {
	if c.ClearDepth {
		return gputypes.LoadOpClear
	}
	return gputypes.LoadOpLoad
}

// BeginSampleCommand opens a named profiling scope.
type BeginSampleCommand struct {
	Name string
}

// Type implements Command.
func (BeginSampleCommand) Type() CommandType { return CmdBeginSample }

// EndSampleCommand closes the named profiling scope.
type EndSampleCommand struct {
	Name string
}

// Type implements Command.
func (EndSampleCommand) Type() CommandType { return CmdEndSample }

// DrawRendererListCommand draws a renderer list.
type DrawRendererListCommand struct {
	List RendererList
}

// Type implements Command.
func (DrawRendererListCommand) Type() CommandType { return CmdDrawRendererList }
