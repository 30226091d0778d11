package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/tatianab/cave-miner/internal/config"
	"github.com/tatianab/cave-miner/internal/engine"
	"github.com/tatianab/cave-miner/internal/logger"
	"github.com/tatianab/cave-miner/internal/models"
	"github.com/tatianab/cave-miner/internal/narrator"
)

const (
	frameTime     = 1.0 / 60
	maxNarrations = 3
	// caveStay is how long the bot hunts before climbing back up.
	caveStay = 45.0
)

func main() {
	frames := flag.Int("frames", 60*60*10, "number of 1/60s frames to simulate")
	seed := flag.Int64("seed", 1, "world seed")
	verbose := flag.Bool("v", false, "log engine events to stderr")
	flag.Parse()

	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg := logger.Nop()
	if *verbose {
		lg = logger.New(os.Stderr)
	}
	eng := engine.New(engine.Options{Width: cfg.Width, Height: cfg.Height, Seed: *seed},
		rand.New(rand.NewSource(*seed)), lg)

	var nar *narrator.Narrator
	if cfg.Narrator.Enabled() {
		nar, err = narrator.New(context.Background(), cfg.Narrator.APIKey, cfg.Narrator.Model)
		if err != nil {
			log.Fatalf("Failed to create narrator: %v", err)
		}
		defer nar.Close()
	}

	fmt.Printf("--- Simulating %d frames on a %dx%d map (seed %d) ---\n", *frames, cfg.Width, cfg.Height, *seed)

	b := &bot{eng: eng}
	counts := map[engine.EventType]int{}
	narrated := 0
	for i := 0; i < *frames; i++ {
		b.step()
		eng.Update(frameTime)
		for _, ev := range eng.DrainEvents() {
			counts[ev.Type]++
			if nar == nil || narrated >= maxNarrations || !narrator.Worth(ev.Type) {
				continue
			}
			text, err := nar.Narrate(context.Background(), narrator.SceneOf(eng, ev))
			if err != nil {
				fmt.Printf("Narrator error: %v\n", err)
				continue
			}
			narrated++
			fmt.Printf("[%6.1fs] %s\n", float64(i)*frameTime, text)
		}
	}

	w := eng.Wallet()
	base := eng.Base()
	fmt.Println("--- Summary ---")
	fmt.Printf("Location: %s\n", eng.Location())
	fmt.Printf("Base: %s (level %d)\n", base.Tier(), base.Level)
	fmt.Printf("Wallet: wood=%s stone=%s gold=%s blueprints=%s\n",
		humanize.Comma(int64(w.Wood)), humanize.Comma(int64(w.Stone)),
		humanize.Comma(int64(w.Gold)), humanize.Comma(int64(w.Blueprints)))
	for _, bl := range eng.Buildings() {
		fmt.Printf("Building: %s level %d\n", bl.Kind, bl.Level)
	}
	for _, t := range []engine.EventType{engine.EventMined, engine.EventKill, engine.EventTheft, engine.EventEnterCave} {
		fmt.Printf("%s events: %d\n", t, counts[t])
	}
}

// bot is a scripted player: mine on the surface, build, then hunt in the cave.
type bot struct {
	eng    *engine.Engine
	inCave float64
}

func (b *bot) step() {
	eng := b.eng

	eng.UpgradeBase()
	for _, k := range models.BuildingKinds {
		if !eng.Build(k) {
			eng.UpgradeBuilding(k)
		}
	}

	if _, mining := eng.MiningTarget(); mining {
		if eng.Location() == engine.Cave {
			eng.Attack()
		}
		return
	}

	if eng.Location() == engine.Cave {
		b.inCave += frameTime
		if b.inCave >= caveStay {
			eng.ExitCave()
			b.inCave = 0
			return
		}
		eng.Attack()
		base := eng.Base()
		if target, ok := b.nearestMonster(); ok && eng.Wallet().Blueprints < base.UpgradeCost().Blueprints {
			b.walkTo(target)
			return
		}
	} else if len(eng.Buildings()) >= 2 {
		if target, ok := b.nearestEntrance(); ok {
			b.walkTo(target)
			return
		}
	}

	if eng.StartMining() {
		return
	}
	if target, ok := b.nearestNode(); ok {
		b.walkTo(target)
	}
}

func (b *bot) walkTo(target models.Vec2) {
	p := b.eng.Player()
	c := p.Bounds().Center()
	dx, dy := 0.0, 0.0
	if math.Abs(target.X-c.X) > p.Speed {
		dx = math.Copysign(1, target.X-c.X)
	}
	if math.Abs(target.Y-c.Y) > p.Speed {
		dy = math.Copysign(1, target.Y-c.Y)
	}
	b.eng.MovePlayer(dx, dy)
}

func (b *bot) nearestNode() (models.Vec2, bool) {
	w := b.eng.Wallet()
	want := models.Wood
	if w.Stone < w.Wood {
		want = models.Stone
	}
	var pts []models.Vec2
	for _, n := range b.eng.ResourceNodes() {
		if b.eng.Location() == engine.Cave || n.Kind == want {
			pts = append(pts, n.Bounds().Center())
		}
	}
	return b.nearest(pts)
}

func (b *bot) nearestMonster() (models.Vec2, bool) {
	var pts []models.Vec2
	for _, m := range b.eng.Monsters() {
		pts = append(pts, m.Center())
	}
	return b.nearest(pts)
}

func (b *bot) nearestEntrance() (models.Vec2, bool) {
	var pts []models.Vec2
	for _, c := range b.eng.CaveEntrances() {
		pts = append(pts, c.Bounds().Center())
	}
	return b.nearest(pts)
}

func (b *bot) nearest(pts []models.Vec2) (models.Vec2, bool) {
	p := b.eng.Player()
	from := p.Bounds().Center()
	best, bestDist := models.Vec2{}, math.Inf(1)
	for _, pt := range pts {
		if d := from.Dist(pt); d < bestDist {
			best, bestDist = pt, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
