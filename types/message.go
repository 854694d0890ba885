package types

import "fmt"

// MessageType is a lifecycle message sent by the host.
type MessageType int

const (
	MessageCommandFlush = MessageType(iota)
	MessageCommandDrain
	MessageSetD3DManager
	MessageNotifyBeginStreaming
	MessageNotifyEndStreaming
	MessageNotifyEndOfStream
	MessageNotifyStartOfStream
)

func (m MessageType) String() string {
	switch m {
	case MessageCommandFlush:
		return "COMMAND_FLUSH"
	case MessageCommandDrain:
		return "COMMAND_DRAIN"
	case MessageSetD3DManager:
		return "SET_D3D_MANAGER"
	case MessageNotifyBeginStreaming:
		return "NOTIFY_BEGIN_STREAMING"
	case MessageNotifyEndStreaming:
		return "NOTIFY_END_STREAMING"
	case MessageNotifyEndOfStream:
		return "NOTIFY_END_OF_STREAM"
	case MessageNotifyStartOfStream:
		return "NOTIFY_START_OF_STREAM"
	default:
		return fmt.Sprintf("MessageType(%d)", int(m))
	}
}
