//go:build tinygo

// Command reverie boots the kernel core on a real AArch64 board. Board
// bring-up (GPIO, timers, UART) is out of spec.md's scope (§1); this file
// only wires the named contracts the kernel consumes: Arch,
// CriticalSection, and a periodic call into TickAdvance from the timer
// ISR, grounded in the teacher's src/joy/main.go and
// src/joy/schedule.go (InitSchedulingTimer/timerTick).
package main

import (
	"github.com/T0213-ZH/reverie/src/lib/trust"
	"github.com/T0213-ZH/reverie/src/lib/upbeat"
	"github.com/T0213-ZH/reverie/src/solace"
)

var kernel *solace.Kernel

func main() {
	trust.Infof("board revision: %s", upbeat.BoardRevisionDecode(boardRevision()))

	kernel = solace.New(solace.Config{
		TicksPerSecond:  1000,
		Arch:            solace.NewARM64Arch(),
		CriticalSection: solace.NewARM64CriticalSection(),
	})

	idleStack := make([]byte, 4096)
	_, err := kernel.CreateTask("idle-work", func(uintptr) {}, 0, 254, solace.WaitForever, idleStack)
	if err != nil {
		trust.Fatalf(1, "failed to create bring-up task: %s", err)
	}

	initSchedulingTimer()
	kernel.Start()
	upbeat.UnmaskDAIF()

	for {
	}
}

// timerISR is invoked by the board's local-timer interrupt vector; it is
// the sole asynchronous preemption source inside the kernel core
// (spec.md §5).
func timerISR() {
	kernel.TickAdvance(1)
}

// boardRevision and initSchedulingTimer are board-specific stubs; a real
// port fills these in from the peripheral registers the teacher's
// deleted src/hardware layer decoded (see DESIGN.md).
func boardRevision() string { return "a02082" }
func initSchedulingTimer()  {}
