package models

import "strings"

// All returns every model for schema migration
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&DealerModel{},
		&TechnicianModel{},
		&TerritoryCategoryModel{},
		&BookingModel{},
		&BookingEventModel{},
		&ComplaintModel{},
		&TrustScoreHistoryModel{},
		&SellerModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&MarketingContentModel{},
		&DocumentModel{},
		&AuditReportModel{},
	}
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
