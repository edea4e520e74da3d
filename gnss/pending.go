package gnss

// CmdKind names one kind of request the driver can have outstanding
// against the receiver. At most one response per kind is ever awaited
// at a time.
type CmdKind int

const (
	CmdMonVer CmdKind = iota
	CmdLogInfo
	CmdMonGnss
	CmdMonComms
	CmdMonRf
	CmdAck
	CmdPvt
	CmdReset   // hardware/cold reset; never acknowledged, so never awaited
	CmdDrvStop // driver shutdown request; never acknowledged, so never awaited
	cmdKindCount
)

// PendingCommands is a fixed-size set of "awaiting response" flags keyed
// by CmdKind, rather than a map, so at-most-one-outstanding-per-kind is
// a type-level property instead of a runtime discipline.
type PendingCommands struct {
	flags [cmdKindCount]bool
}

// Set marks kind as awaiting a response.
func (p *PendingCommands) Set(kind CmdKind) { p.flags[kind] = true }

// Clear marks kind as no longer awaiting a response.
func (p *PendingCommands) Clear(kind CmdKind) { p.flags[kind] = false }

// Pending reports whether kind is currently awaiting a response.
func (p *PendingCommands) Pending(kind CmdKind) bool { return p.flags[kind] }

// Reset clears every pending flag, used on every mode transition and on
// explicit IBIT entry.
func (p *PendingCommands) Reset() { *p = PendingCommands{} }
