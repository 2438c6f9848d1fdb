package game

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"

	"github.com/wvoliveira/pong-unbound/arena"
	"github.com/wvoliveira/pong-unbound/configs"
)

// Sim junta o estado com uma fonte aleatória reproduzível.
type Sim struct {
	State State

	cfg *configs.Config
	src *rand.PCG
	rng *rand.Rand
}

func NewSim(cfg *configs.Config, seed uint64, windowPos, monitor arena.Point) *Sim {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Sim{
		State: NewState(cfg, windowPos, monitor),
		cfg:   cfg,
		src:   src,
		rng:   rand.New(src),
	}
}

// Update avança um quadro.
func (s *Sim) Update(dt float64, in Input) Events {
	var ev Events
	s.State, ev = Step(s.cfg, s.State, dt, in, s.rng)
	return ev
}

type snapshot struct {
	State State
	RNG   []byte
}

// Snapshot serializa o estado e a fonte aleatória com gob.
func (s *Sim) Snapshot() ([]byte, error) {
	rng, err := s.src.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal rng: %w", err)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snapshot{State: s.State, RNG: rng}); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore recria uma Sim a partir de Snapshot.
func Restore(cfg *configs.Config, data []byte) (*Sim, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	src := &rand.PCG{}
	if err := src.UnmarshalBinary(snap.RNG); err != nil {
		return nil, fmt.Errorf("unmarshal rng: %w", err)
	}
	if !snap.State.Arena.Valid() {
		return nil, fmt.Errorf("decode snapshot: degenerate arena %+v", snap.State.Arena)
	}
	if snap.State.Phase < Windowed || snap.State.Phase > Locked {
		return nil, fmt.Errorf("decode snapshot: unknown phase %d", snap.State.Phase)
	}

	return &Sim{State: snap.State, cfg: cfg, src: src, rng: rand.New(src)}, nil
}
