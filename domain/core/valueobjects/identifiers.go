package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// NodeID is a value object representing a unique node identifier
// Value objects are immutable and have no identity beyond their value
type NodeID struct {
	value string
}

// NewNodeID creates a new random NodeID
func NewNodeID() NodeID {
	return NodeID{value: uuid.New().String()}
}

// NewNodeIDFromString creates a NodeID from an existing string
func NewNodeIDFromString(id string) (NodeID, error) {
	if id == "" {
		return NodeID{}, errors.New("node ID cannot be empty")
	}
	return NodeID{value: id}, nil
}

// String returns the string representation of the NodeID
func (id NodeID) String() string {
	return id.value
}

// Equals checks if two NodeIDs are equal
func (id NodeID) Equals(other NodeID) bool {
	return id.value == other.value
}

// IsZero checks if the NodeID is the zero value
func (id NodeID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id NodeID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *NodeID) UnmarshalJSON(data []byte) error {
	value, err := unquote(data)
	if err != nil {
		return errors.New("NodeID must be a string")
	}
	id.value = value
	return nil
}

// ConnectionID is a value object identifying a directed connection
type ConnectionID struct {
	value string
}

// NewConnectionID creates a new random ConnectionID
func NewConnectionID() ConnectionID {
	return ConnectionID{value: uuid.New().String()}
}

// NewConnectionIDFromString creates a ConnectionID from an existing string
func NewConnectionIDFromString(id string) (ConnectionID, error) {
	if id == "" {
		return ConnectionID{}, errors.New("connection ID cannot be empty")
	}
	return ConnectionID{value: id}, nil
}

// String returns the string representation of the ConnectionID
func (id ConnectionID) String() string {
	return id.value
}

// Equals checks if two ConnectionIDs are equal
func (id ConnectionID) Equals(other ConnectionID) bool {
	return id.value == other.value
}

// IsZero checks if the ConnectionID is the zero value
func (id ConnectionID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ConnectionID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ConnectionID) UnmarshalJSON(data []byte) error {
	value, err := unquote(data)
	if err != nil {
		return errors.New("ConnectionID must be a string")
	}
	id.value = value
	return nil
}

// ResourceID is a value object identifying a learning resource
type ResourceID struct {
	value string
}

// NewResourceID creates a new random ResourceID
func NewResourceID() ResourceID {
	return ResourceID{value: uuid.New().String()}
}

// NewResourceIDFromString creates a ResourceID from an existing string
func NewResourceIDFromString(id string) (ResourceID, error) {
	if id == "" {
		return ResourceID{}, errors.New("resource ID cannot be empty")
	}
	return ResourceID{value: id}, nil
}

// String returns the string representation of the ResourceID
func (id ResourceID) String() string {
	return id.value
}

// Equals checks if two ResourceIDs are equal
func (id ResourceID) Equals(other ResourceID) bool {
	return id.value == other.value
}

// IsZero checks if the ResourceID is the zero value
func (id ResourceID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ResourceID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ResourceID) UnmarshalJSON(data []byte) error {
	value, err := unquote(data)
	if err != nil {
		return errors.New("ResourceID must be a string")
	}
	id.value = value
	return nil
}

func unquote(data []byte) (string, error) {
	if string(data) == "null" {
		return "", nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", errors.New("not a JSON string")
	}
	return string(data[1 : len(data)-1]), nil
}
