// Package facade demonstrates the Facade pattern: one simple entry point in
// front of a subsystem of codecs, readers, and mixers that clients should
// not have to orchestrate themselves.
//
// Intent: provide a unified interface to a set of interfaces in a subsystem,
// making the subsystem easier to use.
//
// Applicability:
//   - Clients need one common task done (convert a video) and should not
//     know the five-step choreography behind it.
//   - Layering: the facade is the boundary between the application and the
//     subsystem.
//
// Trade-offs: a facade can grow into a god object if every subsystem
// operation gets funneled through it; it simplifies the common path, it does
// not replace direct subsystem access for the uncommon ones. The subsystem
// types here stay exported for exactly that reason.
//
// The demo converts youtubevideo.ogg to mp4 through the Converter facade.
package facade
