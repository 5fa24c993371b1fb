package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"frs/shared/timezone"
)

func TestLoad(t *testing.T) {
	defer timezone.Load("")

	timezone.Load("Asia/Jakarta")
	if timezone.GetLocation().String() != "Asia/Jakarta" {
		t.Errorf("expected Asia/Jakarta, got %s", timezone.GetLocation())
	}

	timezone.Load("Mars/Olympus")
	if timezone.GetLocation() != time.UTC {
		t.Errorf("expected UTC fallback, got %s", timezone.GetLocation())
	}
}

func TestNow(t *testing.T) {
	timezone.Load("UTC")

	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if now.Location() != time.UTC {
		t.Errorf("expected UTC, got %s", now.Location())
	}
}
