package valueobjects

import (
	"errors"
	"testing"
)

func TestNewMoney(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		_, err := NewMoney(-0.01)
		if !errors.Is(err, ErrNegativeMoney) {
			t.Fatalf("expected ErrNegativeMoney, got %v", err)
		}
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := NewMoney(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !m.IsZero() {
			t.Fatalf("expected zero money")
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		price, _ := NewMoney(20)
		qty, _ := NewQuantity(2)
		svc, _ := NewMoney(100)

		total := svc.Add(price.MultiplyBy(qty))
		if total.Amount() != 140 {
			t.Fatalf("expected 140, got %.2f", total.Amount())
		}
	})
}

func TestNewQuantity(t *testing.T) {
	for _, v := range []int{0, -1, -10} {
		if _, err := NewQuantity(v); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity for %d, got %v", v, err)
		}
	}

	q1, _ := NewQuantity(2)
	q2, _ := NewQuantity(3)
	if q1.Add(q2).Value() != 5 {
		t.Fatalf("expected 5, got %d", q1.Add(q2).Value())
	}
}

func TestNewName(t *testing.T) {
	if _, err := NewName("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}

	n, err := NewName("  Troca de óleo  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "Troca de óleo" {
		t.Fatalf("expected trimmed name, got %q", n.String())
	}
}
