package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/uvarint/store"
)

func TestLevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	l.Debug("imported values", store.Fields{"count": 3})
	l.Error("boom", nil)

	if len(hook.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(hook.Entries))
	}
	if e := hook.Entries[0]; e.Level != logrus.DebugLevel || e.Data["count"] != 3 {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e := hook.LastEntry(); e.Level != logrus.ErrorLevel || e.Message != "boom" {
		t.Fatalf("unexpected entry %+v", e)
	}
}
