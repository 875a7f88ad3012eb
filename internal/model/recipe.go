package model

import "strconv"

// Recipe is the authoritative catalog record. Names are unique at the
// store level; the numeric fields are coerced at the form boundary and
// deliberately carry no further constraints here.
type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:80;not null;uniqueIndex" json:"name"`
	Healthy     bool   `gorm:"not null" json:"healthy"`
	PrepTime    int    `gorm:"not null" json:"prep_time"`
	CookTime    int    `gorm:"not null" json:"cook_time"`
	Servings    int    `gorm:"not null" json:"servings"`
	Ingredients string `gorm:"size:10000;not null" json:"ingredients"`
	Directions  string `gorm:"size:10000;not null" json:"directions"`
}

// Token returns the text encoding under which a recipe is referenced
// from a session menu list.
func (r *Recipe) Token() string {
	return strconv.FormatUint(uint64(r.ID), 10)
}
