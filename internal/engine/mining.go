package engine

import (
	"fmt"

	"github.com/tatianab/cave-miner/internal/models"
)

// StartMining begins mining the first node in the active location that the
// player touches. Only one node can be mined at a time.
func (e *Engine) StartMining() bool {
	if e.mining != nil {
		return false
	}
	pb := e.player.Bounds()
	for _, n := range e.active().nodes {
		if pb.Intersects(n.Bounds()) {
			n.BeingMined = true
			n.Progress = 0
			e.mining = n
			return true
		}
	}
	return false
}

// StopMining abandons the current node without granting anything.
// It reports whether mining was in progress.
func (e *Engine) StopMining() bool {
	if e.mining == nil {
		return false
	}
	e.cancelMining()
	return true
}

func (e *Engine) cancelMining() {
	if e.mining != nil {
		e.mining.Reset()
		e.mining = nil
	}
}

func (e *Engine) updateMining(dt float64) {
	n := e.mining
	if n == nil || !n.BeingMined {
		return
	}
	n.Progress += dt
	if n.Progress < n.MiningTime-models.TimeEpsilon {
		return
	}
	e.wallet.Add(n.Kind, 1)
	n.Reset()
	e.mining = nil
	e.emit(EventMined, 1, fmt.Sprintf("mined 1 %s", n.Kind))
}
