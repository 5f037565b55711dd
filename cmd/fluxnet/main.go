// Command fluxnet inspects and transforms metabolic network models stored as
// YAML or HCL documents.
//
// Usage:
//
//	fluxnet show model.yaml
//	fluxnet matrix model.hcl --dof
//	fluxnet irreversible model.yaml -o split.yaml
//	fluxnet gpr model.yaml --active g1,g2
//	fluxnet knockout model.yaml --genes g2
//	fluxnet reach model.yaml --from A_e --knockout g1
//	fluxnet check model.yaml --flux EX_A=4,R1=4
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
