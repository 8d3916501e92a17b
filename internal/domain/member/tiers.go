package member

// Tier identifies a loyalty level. Levels are ordered by cumulative deposit.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// TierInfo describes a loyalty level and its perks.
type TierInfo struct {
	ID            Tier     `json:"id"`
	Name          string   `json:"name"`
	NameEn        string   `json:"nameEn"`
	MinDeposit    int64    `json:"minDeposit"`
	DiscountRate  float64  `json:"discountRate"`
	DiscountLabel string   `json:"discountLabel"`
	Benefits      []string `json:"benefits"`
}

// tierOrder lists tiers from lowest to highest.
var tierOrder = []Tier{TierBasic, TierSilver, TierGold, TierPlatinum}

// Tiers is the loyalty table. Thresholds are cumulative deposit in NT$.
var Tiers = map[Tier]TierInfo{
	TierBasic: {
		ID:            TierBasic,
		Name:          "一般會員",
		NameEn:        "Basic",
		MinDeposit:    0,
		DiscountRate:  1,
		DiscountLabel: "原價",
		Benefits:      []string{"基本設計服務", "免費修改次數依方案"},
	},
	TierSilver: {
		ID:            TierSilver,
		Name:          "銀卡會員",
		NameEn:        "Silver",
		MinDeposit:    5000,
		DiscountRate:  0.95,
		DiscountLabel: "95折",
		Benefits:      []string{"所有訂單 95 折", "優先製作排程", "免費修改 +1 次"},
	},
	TierGold: {
		ID:            TierGold,
		Name:          "金卡會員",
		NameEn:        "Gold",
		MinDeposit:    30000,
		DiscountRate:  0.9,
		DiscountLabel: "9折",
		Benefits:      []string{"所有訂單 9 折", "優先製作排程", "急件免加價", "免費修改 +2 次"},
	},
	TierPlatinum: {
		ID:            TierPlatinum,
		Name:          "白金會員",
		NameEn:        "Platinum",
		MinDeposit:    100000,
		DiscountRate:  0.85,
		DiscountLabel: "85折",
		Benefits:      []string{"所有訂單 85 折", "專屬設計師服務", "最高優先製作", "急件免加價", "無限免費修改", "VIP 專線服務"},
	},
}

// TierForDeposit maps a cumulative deposit amount to the matching tier.
func TierForDeposit(totalDeposit int64) Tier {
	tier := TierBasic
	for _, candidate := range tierOrder {
		if totalDeposit >= Tiers[candidate].MinDeposit {
			tier = candidate
		}
	}
	return tier
}

// NextTier returns the level above the given one, if any.
func NextTier(current Tier) (TierInfo, bool) {
	for i, candidate := range tierOrder {
		if candidate == current && i < len(tierOrder)-1 {
			return Tiers[tierOrder[i+1]], true
		}
	}
	return TierInfo{}, false
}

// UpgradeAmount reports how much more deposit reaches the next tier.
func UpgradeAmount(totalDeposit int64) (TierInfo, int64, bool) {
	next, ok := NextTier(TierForDeposit(totalDeposit))
	if !ok {
		return TierInfo{}, 0, false
	}
	return next, next.MinDeposit - totalDeposit, true
}
