package biscuit

import (
	"errors"
	"testing"

	"github.com/pqsig/go-biscuit/batch"
)

func TestSizes(t *testing.T) {
	var expected = []struct {
		p               Params
		sk, vk, sig, ck int
	}{
		{Toy, 18, 17, 146, 32},
		{Biscuit128S, 182, 50, 11960, 32},
		{Biscuit128F, 182, 50, 12507, 32},
		{Biscuit192S, 275, 75, 27219, 48},
		{Biscuit192F, 275, 75, 28656, 48},
		{Biscuit256S, 363, 99, 47547, 64},
		{Biscuit256F, 363, 99, 50300, 64},
	}
	for _, e := range expected {
		p := e.p
		if s := p.SigningKeySize(); s != e.sk {
			t.Fatalf("ERR: %s signing key -> %d (exp: %d)\n", p.Name, s, e.sk)
		}
		if s := p.VerifyingKeySize(); s != e.vk {
			t.Fatalf("ERR: %s verifying key -> %d (exp: %d)\n", p.Name, s, e.vk)
		}
		if s := p.SignatureSize(); s != e.sig {
			t.Fatalf("ERR: %s signature -> %d (exp: %d)\n", p.Name, s, e.sig)
		}
		p.Compact = true
		if s := p.SigningKeySize(); s != e.ck {
			t.Fatalf("ERR: %s compact signing key -> %d (exp: %d)\n", p.Name, s, e.ck)
		}
	}
}

func TestILog2(t *testing.T) {
	var expected = map[int]int{
		2: 1, 3: 2, 4: 2, 5: 3, 16: 4, 17: 5, 255: 8, 256: 8, 257: 9, 65536: 16,
	}
	for n, l := range expected {
		if ilog2(n) != l {
			t.Fatalf("ERR: ilog2(%d) = %d (exp: %d)\n", n, ilog2(n), l)
		}
	}
}

func TestParamsByName(t *testing.T) {
	for _, p := range presets {
		q, ok := ParamsByName(p.Name)
		if !ok || q != p {
			t.Fatalf("ERR: lookup of %s failed", p.Name)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("ERR: %s: %v", p.Name, err)
		}
	}
	if _, ok := ParamsByName("biscuit512s"); ok {
		t.Fatal("ERR: unknown name found")
	}
}

func TestValidate(t *testing.T) {
	bad := []func(p *Params){
		func(p *Params) { p.Lambda = 100 },
		func(p *Params) { p.Tau = 0 },
		func(p *Params) { p.Tau = 0x10000 },
		func(p *Params) { p.N = 1 },
		func(p *Params) { p.N = 0x10001 },
		func(p *Params) { p.Q = batch.Field(17) },
		func(p *Params) { p.NVars = 0 },
		func(p *Params) { p.MEqs = 0 },
		func(p *Params) { p.Degree = 1 },
	}
	for i, mod := range bad {
		p := Toy
		mod(&p)
		err := p.Validate()
		if !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("ERR: case %d: %v", i, err)
		}
		if _, _, err := KeyGen(p, nil); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("ERR: case %d: keygen accepted invalid parameters", i)
		}
		if Verify(p, nil, nil, nil) {
			t.Fatalf("ERR: case %d: verify accepted invalid parameters", i)
		}
	}
}
