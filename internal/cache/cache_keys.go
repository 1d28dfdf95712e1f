package cache

import (
	"fmt"
	"time"
)

const (
	UserSettingsCacheTTL   = 7 * 24 * time.Hour
	CompanyRatingsCacheTTL = time.Hour
)

func UserSettingsKey(userID int) string {
	return fmt.Sprintf("settings:user:%d", userID)
}

func CompanyRatingsKey(companyID int) string {
	return fmt.Sprintf("ratings:company:%d", companyID)
}
