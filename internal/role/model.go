package role

// Permission names seeded with the schema.
const (
	PermAddEmployee    = "Add employee"
	PermRemoveEmployee = "Remove employee"
	PermListRoles      = "List roles"
	PermCreateRole     = "Create role"
	PermModifyRole     = "Modify role"
	PermDeleteRole     = "Delete role"
	PermCreateCampaign = "Create campaign"
	PermModifyCampaign = "Modify campaign"
	PermRequestFunds   = "Request funds"
)

// Roles every company starts with.
const (
	NameOwner    = "Owner"
	NameEmployee = "Employee"
)

type PermissionType string

const (
	PermissionCompany  PermissionType = "COMPANY"
	PermissionCampaign PermissionType = "CAMPAIGN"
	PermissionRole     PermissionType = "ROLE"
	PermissionEmployee PermissionType = "EMPLOYEE"
	PermissionFunding  PermissionType = "FUNDING"
)

var PermissionTypes = []PermissionType{
	PermissionCompany,
	PermissionCampaign,
	PermissionRole,
	PermissionEmployee,
	PermissionFunding,
}

type Permission struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Type        PermissionType `json:"type"`
	Description string         `json:"description"`
}

type Role struct {
	ID          int64        `json:"id"`
	CompanyID   int64        `json:"company_id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}
