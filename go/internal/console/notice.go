package console

import (
	"time"

	"github.com/google/uuid"
)

// maxNotices bounds the notice list; older notices fall off the front.
const maxNotices = 20

// Level is the severity of a user-visible notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a transient message shown to the operator.
type Notice struct {
	ID        uuid.UUID
	Level     Level
	Message   string
	CreatedAt time.Time
}
