package field

import (
	"github.com/consensys/go-zkvm/pkg/util/field/koalabear"
	"github.com/consensys/go-zkvm/pkg/util/field/koalabear4"
)

func init() {
	// make sure the interfaces are adhered to.
	_ = Element[koalabear.Element](koalabear.Element{})
	_ = Element[koalabear4.Element](koalabear4.Element{})
	_ = Extension[koalabear4.Element, koalabear.Element](koalabear4.Element{})
}
