package enum

// ── Group A: Service tiers (priced separately in the catalog) ──

const (
	ServiceTypeNormal   = "NORMAL"
	ServiceTypeDryClean = "DRY_CLEAN"
	ServiceTypeIronOnly = "IRON_ONLY"
)

// IsValidServiceType reports whether s is one of the three service tiers.
func IsValidServiceType(s string) bool {
	switch s {
	case ServiceTypeNormal, ServiceTypeDryClean, ServiceTypeIronOnly:
		return true
	}
	return false
}

// IsSplitServiceType reports whether s names one of the two split buckets of a
// quantity entry (the normal remainder is derived, never set directly).
func IsSplitServiceType(s string) bool {
	return s == ServiceTypeDryClean || s == ServiceTypeIronOnly
}

// ── Group B: Order attributes ──

const (
	DeliveryTypePickup = "PICKUP"
	DeliveryTypeHome   = "HOME_DELIVERY"
)

const (
	SizeSmall  = "SMALL"
	SizeMedium = "MEDIUM"
	SizeLarge  = "LARGE"
)

// ── Group C: Staff roles ──

const (
	RoleAdmin     = "ADMIN"
	RoleReception = "RECEPTION"
	RoleCashier   = "CASHIER"
	RoleWasher    = "WASHER"
	RoleIroner    = "IRONER"
	RoleDriver    = "DRIVER"
)

// HasBillingRights reports whether the role may authorize order creation.
func HasBillingRights(role string) bool {
	switch role {
	case RoleAdmin, RoleReception, RoleCashier:
		return true
	}
	return false
}
