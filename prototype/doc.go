// Package prototype demonstrates the Prototype pattern: new objects are
// produced by cloning pre-configured prototypes instead of constructing from
// scratch.
//
// Intent: specify the kinds of objects to create using a prototypical
// instance, and create new objects by copying it.
//
// Applicability:
//   - Instances to create are configured at runtime, not known statically.
//   - Construction is expensive relative to copying an exemplar.
//   - A factory should be parameterized with instances rather than types.
//
// Trade-offs: every prototype must implement a correct Clone, and the deep
// vs. shallow question bites anywhere a prototype holds reference types. The
// topping's note list here is copied element-wise; ShallowClone shares it to
// show the aliasing.
//
// Clones preserve the prototype's state at clone time; mutating a clone
// never touches the prototype. The demo stamps customers out of
// coffee+milk and tea+sugar prototype factories, customizes the clones,
// and shows the prototypes unchanged.
package prototype
