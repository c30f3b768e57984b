package response

import "user-portal/internal/data/entity"

type UserDetails struct {
	Email   *string `json:"email,omitempty"`
	Mobile  *string `json:"mobile,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
	Address *string `json:"address,omitempty"`
}

type UserDetailsResponse struct {
	Message     string      `json:"message"`
	UserDetails UserDetails `json:"userDetails"`
}

func DetailsToResponse(details *entity.UserDetails) UserDetails {
	return UserDetails{
		Email:   details.Email,
		Mobile:  details.Mobile,
		Pincode: details.Pincode,
		Address: details.Address,
	}
}

type ListedUser struct {
	Email   string  `json:"email"`
	Mobile  *string `json:"mobile,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
	Address *string `json:"address,omitempty"`
}

// UserList is the paginated joined listing produced by the user service; the
// handler adds the message on top.
type UserList struct {
	TotalUsers  int64
	CurrentPage int
	TotalPages  int
	Users       []ListedUser
}

type UserListResponse struct {
	Message     string       `json:"message"`
	TotalUsers  int64        `json:"totalUsers"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	Users       []ListedUser `json:"users"`
}
