package i18n

import (
	"testing"

	"github.com/ArthurHoang15/notification-server/internal/domain"
)

func TestCompose_VietnameseGeneral(t *testing.T) {
	title, body := Compose(domain.LangVI, domain.SlotMorning, false, "", "")
	if title != "💊 Nhắc uống thuốc sáng" {
		t.Fatalf("title: %q", title)
	}
	if body != "Đã đến giờ uống thuốc buổi sáng. Hãy nhớ uống đúng liều!" {
		t.Fatalf("body: %q", body)
	}
}

func TestCompose_VietnameseDetailed(t *testing.T) {
	_, body := Compose(domain.LangVI, domain.SlotMorning, true, "Paracetamol", "500mg")
	if body != "Đã đến giờ uống Paracetamol - 500mg" {
		t.Fatalf("body: %q", body)
	}
}

func TestCompose_DetailedWithoutDosage(t *testing.T) {
	_, body := Compose(domain.LangVI, domain.SlotNoon, true, "Paracetamol", "")
	if body != "Đã đến giờ uống Paracetamol" {
		t.Fatalf("dosage suffix must be omitted, got %q", body)
	}
}

func TestCompose_DetailedFlagWithoutMedicineFallsBack(t *testing.T) {
	_, body := Compose(domain.LangVI, domain.SlotEvening, true, "", "500mg")
	if body != "Đã đến giờ uống thuốc buổi tối. Hãy nhớ uống đúng liều!" {
		t.Fatalf("want general body when medicine is empty, got %q", body)
	}
}

func TestCompose_English(t *testing.T) {
	title, body := Compose(domain.LangEN, domain.SlotEvening, false, "", "")
	if title != "💊 Evening medication reminder" {
		t.Fatalf("title: %q", title)
	}
	if body != "Time to take your evening medication!" {
		t.Fatalf("body: %q", body)
	}

	_, body = Compose(domain.LangEN, domain.SlotMorning, true, "Aspirin", "100mg")
	if body != "Time to take Aspirin - 100mg" {
		t.Fatalf("detailed body: %q", body)
	}
}

func TestCompose_UnknownLanguageDefaultsToVietnamese(t *testing.T) {
	title, _ := Compose(domain.Language("fr"), domain.SlotNoon, false, "", "")
	if title != "💊 Nhắc uống thuốc trưa" {
		t.Fatalf("want vi fallback, got %q", title)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	t1, b1 := Compose(domain.LangEN, domain.SlotAfternoon, true, "Ibuprofen", "200mg")
	t2, b2 := Compose(domain.LangEN, domain.SlotAfternoon, true, "Ibuprofen", "200mg")
	if t1 != t2 || b1 != b2 {
		t.Fatalf("compose must be deterministic")
	}
}
