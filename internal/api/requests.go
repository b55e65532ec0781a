package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserList accepts either a JSON array of user names or a single name.
type UserList []string

func (u *UserList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*u = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*u = UserList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("users_list must be a string or a list of strings")
	}
	*u = many
	return nil
}

// CommitDataRequest selects users and a date window.
type CommitDataRequest struct {
	UsersList  UserList `json:"users_list" binding:"required,dive,required" example:"octocat"`
	FilterDate string   `json:"filter_date" binding:"required" example:"2024-01-01"`
	// ExactDate restricts results to FilterDate itself instead of FilterDate onwards.
	ExactDate bool `json:"exact_date" example:"false"`
}

// CommitCounterRequest selects users; the filter date defaults to yesterday.
type CommitCounterRequest struct {
	UsersList  UserList `json:"users_list" binding:"required,dive,required" example:"octocat"`
	FilterDate string   `json:"filter_date,omitempty" example:"2024-01-01"`
}
