package ids

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// InvocationId correlates one supervised unit of work across handler output.
type InvocationId string

func NewInvocationId() InvocationId {
	return InvocationId(strings.ToLower(ulid.Make().String()))
}

func (id InvocationId) String() string {
	return string(id)
}
