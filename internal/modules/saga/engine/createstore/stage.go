package createstore

// StageKind names every forward/compensation point the CreateStore
// saga can be in. Kept distinct from the other three workflows'.
type StageKind string

const (
	StoreCreationStart        StageKind = "STORE_CREATION_START"
	StoreCreationComplete     StageKind = "STORE_CREATION_COMPLETE"
	WarehousesRoleSetStart    StageKind = "WAREHOUSES_ROLE_SET_START"
	WarehousesRoleSetComplete StageKind = "WAREHOUSES_ROLE_SET_COMPLETE"
	OrdersRoleSetStart        StageKind = "ORDERS_ROLE_SET_START"
	OrdersRoleSetComplete     StageKind = "ORDERS_ROLE_SET_COMPLETE"
	BillingRoleSetStart       StageKind = "BILLING_ROLE_SET_START"
	BillingRoleSetComplete    StageKind = "BILLING_ROLE_SET_COMPLETE"
	BillingCreateMerchantStart    StageKind = "BILLING_CREATE_MERCHANT_START"
	BillingCreateMerchantComplete StageKind = "BILLING_CREATE_MERCHANT_COMPLETE"
)

// Stage is one CreateStore operation-log entry.
type Stage struct {
	Kind    StageKind
	UserID  int
	StoreID int
	RoleID  string
}

func storeCreationStart(userID int) Stage    { return Stage{Kind: StoreCreationStart, UserID: userID} }
func storeCreationComplete(userID int) Stage { return Stage{Kind: StoreCreationComplete, UserID: userID} }

func warehousesRoleSetStart(roleID string) Stage    { return Stage{Kind: WarehousesRoleSetStart, RoleID: roleID} }
func warehousesRoleSetComplete(roleID string) Stage { return Stage{Kind: WarehousesRoleSetComplete, RoleID: roleID} }

func ordersRoleSetStart(roleID string) Stage    { return Stage{Kind: OrdersRoleSetStart, RoleID: roleID} }
func ordersRoleSetComplete(roleID string) Stage { return Stage{Kind: OrdersRoleSetComplete, RoleID: roleID} }

func billingRoleSetStart(roleID string) Stage    { return Stage{Kind: BillingRoleSetStart, RoleID: roleID} }
func billingRoleSetComplete(roleID string) Stage { return Stage{Kind: BillingRoleSetComplete, RoleID: roleID} }

func billingCreateMerchantStart(storeID int) Stage    { return Stage{Kind: BillingCreateMerchantStart, StoreID: storeID} }
func billingCreateMerchantComplete(storeID int) Stage { return Stage{Kind: BillingCreateMerchantComplete, StoreID: storeID} }
