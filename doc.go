/*
Package sigslot provides a single-slot cancellation primitive for asynchronous
operations: a [Signal] that owns at most one cancellation handler, and a [Slot]
through which the operation installs that handler.

The design goal is to make per-operation cancellation cheap enough to use
everywhere: installing a replacement handler of the same or smaller size reuses
the previous handler's backing memory instead of round-tripping through the
allocator, and emission is a plain synchronous call with no queue or scheduler
in between.

# Signals and slots

The code that initiates a cancellable operation creates a [Signal] and keeps
ownership of it. It obtains a [Slot] via [Signal.Slot] and threads the slot
through to the operation's internals, which install a handler with
[Slot.Emplace] or [EmplaceContext]. Whoever decides the operation should be
cancelled calls [Signal.Emit], which invokes the installed handler synchronously
on the emitting goroutine.

A signal has exactly one slot. Calling [Signal.Slot] repeatedly returns equal,
interchangeable values; they are views onto the same handler storage, not
independent subscriptions. There is no broadcast: installing a handler replaces
the previous one.

Slots never own anything. The zero [Slot] is disconnected, and a slot becomes
dead when its signal is closed; using a dead or disconnected slot to install or
clear a handler panics.

# Handler replacement and memory reuse

Installing a handler allocates a backing block sized to the handler and its
context. Replacing it surrenders the old block first and reuses it whenever the
replacement fits, so the common pattern of re-arming cancellation on every retry
of an operation settles into a steady state with no allocator traffic. The block
source is pluggable through [Allocator]; the default draws from the Go heap.

[EmplaceContext] additionally stores a caller-supplied context value alongside
the handler and returns a pointer to it, so the operation can record
cancellation-relevant state (deadlines, connection handles, ...) between
installation and emission. The handler receives that same pointer when the
signal is emitted.

# Concurrency

None is provided. Emit, Emplace, and Clear neither block nor lock; the package
assumes a single logical owner drives the signal. If handlers may be installed
and the signal emitted from different goroutines, the caller must serialize
access externally, for example by confining the signal to one goroutine and
marshalling cancellation requests onto it.
*/
package sigslot
