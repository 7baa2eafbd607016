package sysaction

import (
	"errors"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	data, err := MakeSysAction(ActionRecordTrade, RecordTradePayload{
		Volume:  "40000",
		IsMaker: true,
	})
	if err != nil {
		t.Fatalf("MakeSysAction: %v", err)
	}
	sa, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sa.Action != ActionRecordTrade {
		t.Fatalf("action mismatch: %q", sa.Action)
	}
	var p RecordTradePayload
	if err := DecodePayload(sa, &p); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Volume != "40000" || !p.IsMaker {
		t.Fatalf("payload mismatch: %+v", p)
	}
}

func TestDecodeNoPayload(t *testing.T) {
	data, err := MakeSysAction(ActionSetPaused, nil)
	if err != nil {
		t.Fatalf("MakeSysAction: %v", err)
	}
	sa, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var p SetPausedPayload
	if err := DecodePayload(sa, &p); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Paused {
		t.Fatalf("zero payload expected, got %+v", p)
	}
}

func TestDecodeInvalid(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not json", []byte("not json")},
		{"missing action", []byte(`{"payload":{}}`)},
		{"wrong envelope type", []byte(`[1,2,3]`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.data); !errors.Is(err, ErrInvalidSysAction) {
				t.Fatalf("want ErrInvalidSysAction, got %v", err)
			}
		})
	}
}

func TestDecodeUnknownActionPassesThrough(t *testing.T) {
	// Unknown kinds decode fine; rejecting them is the registry's job.
	sa, err := Decode([]byte(`{"action":"NO_SUCH_ACTION"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sa.Action != ActionKind("NO_SUCH_ACTION") {
		t.Fatalf("action mismatch: %q", sa.Action)
	}
}

type stubHandler struct {
	kind    ActionKind
	handled int
}

func (h *stubHandler) CanHandle(kind ActionKind) bool { return kind == h.kind }

func (h *stubHandler) Handle(ctx *Context, sa *SysAction) error {
	h.handled++
	return nil
}

func TestRegistryDispatch(t *testing.T) {
	reg := &Registry{}
	h := &stubHandler{kind: ActionStakeLat}
	reg.Register(h)

	data, _ := MakeSysAction(ActionStakeLat, StakeLatPayload{Amount: "1"})
	if err := reg.Execute(&Context{}, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if h.handled != 1 {
		t.Fatalf("handler invoked %d times", h.handled)
	}

	data, _ = MakeSysAction(ActionKind("NO_SUCH_ACTION"), nil)
	if err := reg.Execute(&Context{}, data); err == nil {
		t.Fatal("unknown action did not error")
	}
}
