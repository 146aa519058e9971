package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRoleRequest struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	GrantedBy string `json:"granted_by"`
}

type RoleGrantDTO struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	GrantedBy string `json:"granted_by"`
	GrantedAt string `json:"granted_at"`
}

type RegisterRoleResponse struct {
	Status string       `json:"status"`
	Data   RoleGrantDTO `json:"data"`
}

type HasRoleResponse struct {
	Status string `json:"status"`
	Data   struct {
		UserID  string `json:"user_id"`
		Role    string `json:"role"`
		HasRole bool   `json:"has_role"`
	} `json:"data"`
}

type ListUserRolesResponse struct {
	Status string         `json:"status"`
	Data   []RoleGrantDTO `json:"data"`
}
