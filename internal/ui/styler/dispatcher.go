// Package styler fans pane position updates out to registered styler plugins.
package styler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
	"github.com/bnema/panedrawer/internal/logging"
)

// Dispatcher keeps one ordered observer list per cardinal direction.
//
// Registration changes made from inside a plugin callback are deferred until
// the running dispatch returns. Not safe for concurrent use.
type Dispatcher struct {
	observers   map[entity.Direction][]port.StylerPlugin
	dispatching int
	pending     []func()
	logger      zerolog.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(ctx context.Context) *Dispatcher {
	return &Dispatcher{
		observers: make(map[entity.Direction][]port.StylerPlugin, 4),
		logger:    logging.FromContext(ctx).With().Str("component", "styler").Logger(),
	}
}

// Attach registers plugin under every cardinal direction in mask. OnAttach
// fires only if plugin was not registered under any direction before.
//
// Plugins are matched with ==; a plugin whose dynamic type is not comparable
// panics with a PreconditionError.
func (d *Dispatcher) Attach(plugin port.StylerPlugin, mask entity.Direction) {
	if plugin == nil {
		return
	}
	entity.MustBeComparable("Dispatcher.Attach", mask, plugin)
	if d.dispatching > 0 {
		d.pending = append(d.pending, func() { d.Attach(plugin, mask) })
		return
	}

	wasMember := d.member(plugin)
	for _, dir := range mask.Cardinals() {
		if !contains(d.observers[dir], plugin) {
			d.observers[dir] = append(d.observers[dir], plugin)
		}
	}
	if !wasMember && d.member(plugin) {
		d.logger.Debug().Stringer("mask", mask).Msg("styler attached")
		plugin.OnAttach(mask)
	}
}

// Detach removes plugin from every cardinal direction in mask. OnDetach fires
// only once plugin is no longer registered under any direction.
func (d *Dispatcher) Detach(plugin port.StylerPlugin, mask entity.Direction) {
	if plugin == nil {
		return
	}
	entity.MustBeComparable("Dispatcher.Detach", mask, plugin)
	if d.dispatching > 0 {
		d.pending = append(d.pending, func() { d.Detach(plugin, mask) })
		return
	}

	wasMember := d.member(plugin)
	for _, dir := range mask.Cardinals() {
		d.observers[dir] = remove(d.observers[dir], plugin)
		if len(d.observers[dir]) == 0 {
			delete(d.observers, dir)
		}
	}
	if wasMember && !d.member(plugin) {
		d.logger.Debug().Stringer("mask", mask).Msg("styler detached")
		plugin.OnDetach(mask)
	}
}

// Observers returns a snapshot of the plugins notified for direction. A
// cardinal direction yields its own list; anything else yields the union of
// all lists in canonical direction order without duplicates.
func (d *Dispatcher) Observers(direction entity.Direction) []port.StylerPlugin {
	if direction.IsCardinal() {
		return append([]port.StylerPlugin(nil), d.observers[direction]...)
	}
	var out []port.StylerPlugin
	for _, dir := range entity.DirectionAll.Cardinals() {
		for _, p := range d.observers[dir] {
			if !contains(out, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Dispatch notifies the observers of direction with closedFraction.
func (d *Dispatcher) Dispatch(closedFraction float64, direction entity.Direction) {
	d.notify(d.Observers(direction), closedFraction, direction)
}

// TransitionOut tells the observers of an outgoing direction that it is
// finished, by sending them a fully closed update with no direction.
func (d *Dispatcher) TransitionOut(outgoing entity.Direction) {
	if !outgoing.IsCardinal() {
		return
	}
	d.notify(d.Observers(outgoing), 1.0, entity.DirectionNone)
}

// Len returns the number of distinct registered plugins.
func (d *Dispatcher) Len() int {
	return len(d.Observers(entity.DirectionNone))
}

func (d *Dispatcher) notify(snapshot []port.StylerPlugin, fraction float64, direction entity.Direction) {
	d.dispatching++
	for _, p := range snapshot {
		p.OnUpdate(fraction, direction)
	}
	d.dispatching--

	if d.dispatching == 0 && len(d.pending) > 0 {
		pending := d.pending
		d.pending = nil
		for _, fn := range pending {
			fn()
		}
	}
}

func (d *Dispatcher) member(plugin port.StylerPlugin) bool {
	for _, list := range d.observers {
		if contains(list, plugin) {
			return true
		}
	}
	return false
}

func contains(list []port.StylerPlugin, plugin port.StylerPlugin) bool {
	for _, p := range list {
		if p == plugin {
			return true
		}
	}
	return false
}

func remove(list []port.StylerPlugin, plugin port.StylerPlugin) []port.StylerPlugin {
	for i, p := range list {
		if p == plugin {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
