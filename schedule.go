package artemis

import (
	"fmt"
	"slices"
)

type State int

// Session states. The app starts in StateRunning and ends after entering
// StateClosing.
const (
	StateRunning State = iota
	StateClosing
)

// Stage is a named slot in the frame. Stages run in app order every frame.
type Stage struct {
	Name string
}

var (
	Prelude    = Stage{Name: "Prelude"}
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	PreRender  = Stage{Name: "PreRender"}
	Render     = Stage{Name: "Render"}
	PostRender = Stage{Name: "PostRender"}
	Finale     = Stage{Name: "Finale"}
)

var defaultStages = []Stage{Prelude, PreUpdate, Update, PostUpdate, PreRender, Render, PostRender, Finale}

type statePhase int

const (
	enter statePhase = iota
	execute
	exit
)

// stateScheduleBuilder selects the state and phase a system runs in.
type stateScheduleBuilder struct {
	state State
	phase statePhase
}

func OnEnter(state State) stateScheduleBuilder {
	return stateScheduleBuilder{state: state, phase: enter}
}

func OnExecute(state State) stateScheduleBuilder {
	return stateScheduleBuilder{state: state, phase: execute}
}

func OnExit(state State) stateScheduleBuilder {
	return stateScheduleBuilder{state: state, phase: exit}
}

// systemScheduleBuilder places a system. Without InState, or with RunAlways,
// the system runs every frame regardless of state.
type systemScheduleBuilder struct {
	system    systemFn
	stage     Stage
	runAlways bool
	inState   *stateScheduleBuilder
}

// System schedules fn in Update unless InStage says otherwise.
func System(fn systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{system: fn, stage: Update}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	sched.stage = s
	return sched
}

func (sched systemScheduleBuilder) InState(s stateScheduleBuilder) systemScheduleBuilder {
	sched.inState = &s
	return sched
}

func (sched systemScheduleBuilder) RunAlways() systemScheduleBuilder {
	sched.runAlways = true
	return sched
}

func (sched systemScheduleBuilder) stateless() bool {
	return sched.runAlways || sched.inState == nil
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{position: stageBefore, target: s}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{position: stageAfter, target: s}
}

// UseStage inserts stage next to an existing one.
func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	idx := slices.IndexFunc(app.stages, func(s Stage) bool {
		return s.Name == where.target.Name
	})
	if idx < 0 {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}
	if where.position == stageAfter {
		idx++
	}

	app.stages = slices.Insert(app.stages, idx, stage)
	app.initStatefulStage(stage)
	return app
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	name := system.stage.Name

	if system.stateless() {
		if _, ok := app.systemsStateless[name]; !ok {
			panic(fmt.Sprintf("Stage %v doesn't exist", name))
		}
		app.systemsStateless[name] = append(app.systemsStateless[name], system.system)
		return app
	}

	if !app.stateful {
		panic("Trying to use a stateful system in a stateless app.")
	}
	systemsInStage, ok := app.systems[name]
	if !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", name))
	}
	systemsInState, ok := systemsInStage[system.inState.state]
	if !ok {
		panic(fmt.Sprintf("State %v doesn't exist", system.inState.state))
	}
	phase := system.inState.phase
	systemsInState[phase] = append(systemsInState[phase], system.system)
	return app
}

func (app *App) initStatefulStage(stage Stage) {
	app.systemsStateless[stage.Name] = nil

	if !app.stateful {
		return
	}
	app.systems[stage.Name] = make(map[State]map[statePhase][]systemFn)
	for state := app.initialState; state <= app.finalState; state++ {
		app.systems[stage.Name][state] = make(map[statePhase][]systemFn)
	}
}
