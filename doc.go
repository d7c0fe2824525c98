/*
Package flowsuite compiles multi-screen interactive forms into the flow
document consumed by a messaging platform's form runtime, and validates
them against the platform's content and structural limits.

# Concept

A flow is an ordered list of screens. Each screen holds typed elements
picked from a closed catalog (headings, inputs, option groups, images,
conditionals and the Footer). The Footer is the only source of navigation:
a navigate footer names the next screen, a complete footer ends the flow.

The Suite ties the pieces together:

  - Catalog: default elements with injected id generation.
  - Validator: pure, total checks that return data, never errors.
  - Compiler: routing model, single-column layout with one Form wrapper,
    terminal flags and the inferred data model.
  - Serializer: the hyphenated wire JSON, optionally cached by content hash.

# Usage

	suite := flowsuite.New(flowsuite.WithLogger(logger))

	screens, err := suite.Parse(source)
	if err != nil {
		log.Fatal(err)
	}

	report := suite.ValidateFlow(ctx, screens)
	if !report.IsValid {
		for _, e := range report.Errors {
			log.Println(e.Message)
		}
		return
	}

	out, err := suite.Export(ctx, screens)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(out)

Compilation is deterministic: identical screens always produce
byte-identical output, which is what makes the export cache safe.
*/
package flowsuite
