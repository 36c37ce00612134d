package smartenum_test

import (
	"io"
	"log"

	"github.com/xy-planning-network/smartenum"
	"github.com/xy-planning-network/smartenum/logger"
)

var quietLogger = logger.NewLogger(logger.WithLogger(log.New(io.Discard, "", 0)))

type color struct{}

func (color) Registry() *smartenum.Registry { return Colors.Registry() }

type Color = smartenum.Member[color]

var (
	Colors = smartenum.NewFamily[color]("Color", smartenum.WithLogger(quietLogger))

	Red   = Colors.MustRegister("Red", smartenum.WithValue(1), smartenum.WithCode("R"))
	Blue  = Colors.MustRegister("Blue", smartenum.WithValue(2), smartenum.WithCode("B"))
	Green = Colors.MustRegister("Green", smartenum.WithValue(3), smartenum.WithCode("G"))
)

type size struct{}

func (size) Registry() *smartenum.Registry { return Sizes.Registry() }

type Size = smartenum.Member[size]

var (
	Sizes = smartenum.NewFamily[size]("Size", smartenum.WithLogger(quietLogger))

	Small  = Sizes.MustRegister("Small", smartenum.WithValue(1), smartenum.WithCode("S"))
	Medium = Sizes.MustRegister("Medium", smartenum.WithValue(2), smartenum.WithCode("M"))
)

// level members have codes but no text.
type level struct{}

func (level) Registry() *smartenum.Registry { return Levels.Registry() }

type Level = smartenum.Member[level]

var (
	Levels = smartenum.NewFamily[level]("Level", smartenum.WithLogger(quietLogger))

	Low  = Levels.MustRegister("", smartenum.WithCode("LO"))
	High = Levels.MustRegister("", smartenum.WithCode("HI"))
	Bare = Levels.MustRegister("")
)

// planet declares its members lazily.
type planet struct{}

func (planet) Registry() *smartenum.Registry { return planets }

var planets = smartenum.NewRegistry("Planet",
	smartenum.WithLogger(quietLogger),
	smartenum.WithDeclarations(func(r *smartenum.Registry) {
		r.MustRegister("Mercury", smartenum.WithCode("ME"))
		r.MustRegister("Venus", smartenum.WithCode("VE"))
		r.MustRegister("Earth", smartenum.WithCode("EA"))
	}),
)

// orphan hands out no Registry.
type orphan struct{}

func (orphan) Registry() *smartenum.Registry { return nil }

// scratch tags families built inside a single test.
// Their members are only reached through the Family, so it hands out no Registry.
type scratch struct{}

func (scratch) Registry() *smartenum.Registry { return nil }

func newScratchFamily(name string) *smartenum.Family[scratch] {
	return smartenum.NewFamily[scratch](name, smartenum.WithLogger(quietLogger))
}
