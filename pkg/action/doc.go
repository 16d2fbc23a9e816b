/*
Package action holds the block transform library and the six named actions built from it.

Every transform is a total function from a domain.Block to a new domain.Block. An Action
is a fixed pipeline of transforms, chosen at reduction time by a selector symbol:

	act, err := action.Select(domain.MustSymbol('C'))
	if err != nil {
		return err
	}
	out := act.Apply(block)
*/
package action
