// Package signatures is the application module tying the rendering
// engine, compatibility checker, avatar pipeline and persistence together
// behind a JSON HTTP API.
//
// The Service renders previews with their compatibility report in one
// call, persists signatures (always re-rendering the HTML before saving,
// so stored markup can never drift from the stored form data), and runs
// avatar uploads through validation, optimization and storage. Saving is
// refused while an avatar upload is still in flight and for inline data
// URLs, which email clients block.
//
// Handle mounts the module on a chi router; see Router for the composed
// top-level server router.
package signatures
