// Package i18n composes localized reminder messages.
//
// The strings are a contract with the mobile app and with existing
// users' expectations; do not reword them without coordinating an app
// release.
package i18n

import (
	"fmt"
	"strings"

	"github.com/ArthurHoang15/notification-server/internal/domain"
)

type catalog struct {
	slots    map[domain.Slot]string
	title    func(slotName string) string
	detailed func(medicine, dosage string) string
	general  func(slotName string) string
}

var catalogs = map[domain.Language]catalog{
	domain.LangVI: {
		slots: map[domain.Slot]string{
			domain.SlotMorning:   "Sáng",
			domain.SlotNoon:      "Trưa",
			domain.SlotAfternoon: "Chiều",
			domain.SlotEvening:   "Tối",
		},
		title: func(slotName string) string {
			return fmt.Sprintf("💊 Nhắc uống thuốc %s", strings.ToLower(slotName))
		},
		detailed: func(medicine, dosage string) string {
			return fmt.Sprintf("Đã đến giờ uống %s%s", medicine, doseSuffix(dosage))
		},
		general: func(slotName string) string {
			return fmt.Sprintf("Đã đến giờ uống thuốc buổi %s. Hãy nhớ uống đúng liều!", strings.ToLower(slotName))
		},
	},
	domain.LangEN: {
		slots: map[domain.Slot]string{
			domain.SlotMorning:   "Morning",
			domain.SlotNoon:      "Noon",
			domain.SlotAfternoon: "Afternoon",
			domain.SlotEvening:   "Evening",
		},
		title: func(slotName string) string {
			return fmt.Sprintf("💊 %s medication reminder", slotName)
		},
		detailed: func(medicine, dosage string) string {
			return fmt.Sprintf("Time to take %s%s", medicine, doseSuffix(dosage))
		},
		general: func(slotName string) string {
			return fmt.Sprintf("Time to take your %s medication!", strings.ToLower(slotName))
		},
	},
}

func doseSuffix(dosage string) string {
	if dosage == "" {
		return ""
	}
	return " - " + dosage
}

// SlotName returns the localized display name of a slot.
func SlotName(lang domain.Language, slot domain.Slot) string {
	return catalogs[domain.NormalizeLanguage(string(lang))].slots[slot]
}

// Compose builds the notification title and body for one due slot.
// The detailed body is used only when the reminder is flagged detailed
// and carries a medicine name; otherwise the general per-slot body is
// used. Pure function.
func Compose(lang domain.Language, slot domain.Slot, detailed bool, medicine, dosage string) (title, body string) {
	c := catalogs[domain.NormalizeLanguage(string(lang))]
	slotName := c.slots[slot]

	title = c.title(slotName)
	if detailed && medicine != "" {
		body = c.detailed(medicine, dosage)
	} else {
		body = c.general(slotName)
	}
	return title, body
}
