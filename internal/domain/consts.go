package domain

import "time"

// Weekday names used as duty roster keys
const (
	Monday    = "Pazartesi"
	Tuesday   = "Salı"
	Wednesday = "Çarşamba"
	Thursday  = "Perşembe"
	Friday    = "Cuma"
	Saturday  = "Cumartesi"
	Sunday    = "Pazar"
)

// SchoolDays is the fixed set of weekdays that can carry a duty roster
var SchoolDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday}

// WeekdayNames maps Go weekdays to their Turkish names
var WeekdayNames = map[time.Weekday]string{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayAliases maps ASCII-friendly admin input to weekday names
var WeekdayAliases = map[string]string{
	"pazartesi": Monday,
	"pzt":       Monday,
	"1":         Monday,
	"sali":      Tuesday,
	"salı":      Tuesday,
	"2":         Tuesday,
	"carsamba":  Wednesday,
	"çarşamba":  Wednesday,
	"3":         Wednesday,
	"persembe":  Thursday,
	"perşembe":  Thursday,
	"4":         Thursday,
	"cuma":      Friday,
	"5":         Friday,
}

// MonthNames holds Turkish month names indexed by time.Month
var MonthNames = [...]string{
	"", "Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Display labels
const (
	StatusInSession  = "DERS DEVAM EDİYOR"
	StatusBreak      = "TENEFFÜS / ARA"
	StatusOutOfHours = "EĞİTİM SAATLERİ DIŞI"

	BreakLabel      = "ZİLE KALAN"
	OutOfHoursLabel = "-"
	NoCountdown     = "--:--"

	MorningBadge   = "SABAH OKULU"
	AfternoonBadge = "ÖĞLE OKULU"

	TeachersMissing = "Girilmedi"

	BirthdayGreeting = "İYİ Kİ DOĞDUN! 🎉"
	OccasionGreeting = "KUTLU OLSUN! 🇹🇷"
)

// DateFormat is the day.month layout used for special day matching
const DateFormat = "02.01"

// DefaultDutySections is the number of duty rows seeded per weekday
const DefaultDutySections = 5

// DefaultSlotCount is the number of lesson slots seeded per shift
const DefaultSlotCount = 8

// Fallback texts used when the text generator is unavailable
const (
	FallbackMotivation = "Gelecek, bugün hazırlananlara aittir."
)
