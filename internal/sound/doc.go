// Package sound plays an audio file through the first working mechanism.
//
// Play resolves the path (including "~" expansion), verifies the file
// exists, then walks an ordered chain of playback mechanisms: an
// in-process decoder first, then the platform's command-line players.
// The first mechanism that completes without error wins; when all are
// exhausted, Play fails with ErrNoPlaybackMethod.
package sound
