package shared

import "fmt"

// ManagerID is a value object representing a manager's unique identifier
type ManagerID struct {
	value int
}

// NewManagerID creates a new ManagerID value object
func NewManagerID(id int) (ManagerID, error) {
	if id <= 0 {
		return ManagerID{}, fmt.Errorf("manager_id must be positive")
	}
	return ManagerID{value: id}, nil
}

// MustNewManagerID creates a new ManagerID, panicking if invalid.
// Use this only for ids read back from the database.
func MustNewManagerID(id int) ManagerID {
	managerID, err := NewManagerID(id)
	if err != nil {
		panic(err)
	}
	return managerID
}

// Value returns the integer value of the ManagerID
func (m ManagerID) Value() int {
	return m.value
}

func (m ManagerID) String() string {
	return fmt.Sprintf("%d", m.value)
}

// Equals checks if two ManagerIDs are equal
func (m ManagerID) Equals(other ManagerID) bool {
	return m.value == other.value
}

// IsZero checks if the ManagerID is the zero value (uninitialized)
func (m ManagerID) IsZero() bool {
	return m.value == 0
}

// PlayerID identifies a footballer in the player directory
type PlayerID struct {
	value int
}

// NewPlayerID creates a new PlayerID value object
func NewPlayerID(id int) (PlayerID, error) {
	if id <= 0 {
		return PlayerID{}, fmt.Errorf("player_id must be positive")
	}
	return PlayerID{value: id}, nil
}

// MustNewPlayerID creates a new PlayerID, panicking if invalid
func MustNewPlayerID(id int) PlayerID {
	playerID, err := NewPlayerID(id)
	if err != nil {
		panic(err)
	}
	return playerID
}

func (p PlayerID) Value() int {
	return p.value
}

func (p PlayerID) String() string {
	return fmt.Sprintf("%d", p.value)
}

func (p PlayerID) Equals(other PlayerID) bool {
	return p.value == other.value
}

func (p PlayerID) IsZero() bool {
	return p.value == 0
}
