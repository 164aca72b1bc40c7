package menunav

// InjectCommand queues a synthetic command. It is delivered by a later
// Update, one command per call, before any real input is read.
func (in *KeyInput) InjectCommand(cmd Command) {
	if cmd >= numCommands {
		return
	}
	in.injectQueue = append(in.injectQueue, cmd)
}

// InjectSequence queues several commands, delivered one per Update.
func (in *KeyInput) InjectSequence(cmds ...Command) {
	for _, cmd := range cmds {
		in.InjectCommand(cmd)
	}
}

// Pending returns the number of queued synthetic commands.
func (in *KeyInput) Pending() int {
	return len(in.injectQueue)
}

// popInjected removes and returns the oldest queued command.
func (in *KeyInput) popInjected() (Command, bool) {
	if len(in.injectQueue) == 0 {
		return 0, false
	}
	cmd := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
	return cmd, true
}
