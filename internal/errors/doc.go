// Package errors provides coded errors for the dungeon engine.
//
// Every failure the engine reports carries one of a small set of codes so
// the caller can tell the three kinds of failure apart without string
// matching:
//
//   - InvalidArgument: the player typed something that is not a legal move.
//     Front ends re-prompt.
//   - NotFound: a room reference does not name a room in the graph.
//   - FailedPrecondition: the engine or a caller broke a contract, for
//     example claiming an empty treasure or acting after the game ended.
//   - Internal: an unreachable state was reached. The session must end.
//
// Creating errors:
//
//	err := errors.NotFoundf("room %d not found", id)
//	err := errors.FailedPrecondition("treasure already claimed").
//	    WithMeta("room_id", room.ID)
//
// Checking errors:
//
//	if errors.IsInvalidArgument(err) {
//	    // re-prompt
//	}
package errors
