package trap

import "errors"

// ErrIllegalStack is returned by NewFreeTrapStack when the backing block is
// too small, or insufficiently aligned, to host a trap handler block.
var ErrIllegalStack = errors.New("trap: illegal stack")

// ErrForeignLoader is returned by Unload (and by LoadedTrapStack.Close,
// which calls it) when Unload observes that the scratch register no
// longer holds the pointer this stack installed there. It indicates a
// foreign loader intervened between load and unload -- a fatal invariant
// violation in any real deployment, since the two loaded stacks now
// disagree about which one owns the hart.
var ErrForeignLoader = errors.New("trap: scratch register was modified by a foreign loader")
