package createaccount

// StageKind names every forward/compensation point the CreateAccount
// saga can be in. Kept distinct from the other three workflows' stage
// kinds rather than folded into one shared enum: each workflow
// compensates differently and a shared type would blur that.
type StageKind string

const (
	AccountCreationStart          StageKind = "ACCOUNT_CREATION_START"
	AccountCreationComplete       StageKind = "ACCOUNT_CREATION_COMPLETE"
	UsersRoleSetStart             StageKind = "USERS_ROLE_SET_START"
	UsersRoleSetComplete          StageKind = "USERS_ROLE_SET_COMPLETE"
	StoreRoleSetStart             StageKind = "STORE_ROLE_SET_START"
	StoreRoleSetComplete          StageKind = "STORE_ROLE_SET_COMPLETE"
	BillingRoleSetStart           StageKind = "BILLING_ROLE_SET_START"
	BillingRoleSetComplete        StageKind = "BILLING_ROLE_SET_COMPLETE"
	DeliveryRoleSetStart          StageKind = "DELIVERY_ROLE_SET_START"
	DeliveryRoleSetComplete       StageKind = "DELIVERY_ROLE_SET_COMPLETE"
	BillingCreateMerchantStart    StageKind = "BILLING_CREATE_MERCHANT_START"
	BillingCreateMerchantComplete StageKind = "BILLING_CREATE_MERCHANT_COMPLETE"
)

// Stage is one CreateAccount operation-log entry: a kind tag plus
// whichever identifier the compensator needs to undo it. Only one of
// SagaID/RoleID/UserID is meaningful per kind.
type Stage struct {
	Kind   StageKind
	SagaID string
	RoleID string
	UserID int
}

func accountCreationStart(sagaID string) Stage    { return Stage{Kind: AccountCreationStart, SagaID: sagaID} }
func accountCreationComplete(sagaID string) Stage { return Stage{Kind: AccountCreationComplete, SagaID: sagaID} }

func usersRoleSetStart(roleID string) Stage    { return Stage{Kind: UsersRoleSetStart, RoleID: roleID} }
func usersRoleSetComplete(roleID string) Stage { return Stage{Kind: UsersRoleSetComplete, RoleID: roleID} }

func storeRoleSetStart(roleID string) Stage    { return Stage{Kind: StoreRoleSetStart, RoleID: roleID} }
func storeRoleSetComplete(roleID string) Stage { return Stage{Kind: StoreRoleSetComplete, RoleID: roleID} }

func billingRoleSetStart(roleID string) Stage    { return Stage{Kind: BillingRoleSetStart, RoleID: roleID} }
func billingRoleSetComplete(roleID string) Stage { return Stage{Kind: BillingRoleSetComplete, RoleID: roleID} }

func deliveryRoleSetStart(roleID string) Stage    { return Stage{Kind: DeliveryRoleSetStart, RoleID: roleID} }
func deliveryRoleSetComplete(roleID string) Stage { return Stage{Kind: DeliveryRoleSetComplete, RoleID: roleID} }

func billingCreateMerchantStart(userID int) Stage    { return Stage{Kind: BillingCreateMerchantStart, UserID: userID} }
func billingCreateMerchantComplete(userID int) Stage { return Stage{Kind: BillingCreateMerchantComplete, UserID: userID} }
