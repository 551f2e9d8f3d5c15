package model

// All 返回需要 AutoMigrate 的全部模型
func All() []any {
	return []any{
		&User{},
		&Platform{},
		&Stats{},
		&Engagement{},
		&ContentStat{},
		&AudienceStat{},
		&SocialConnection{},
		&CalendarEvent{},
	}
}
