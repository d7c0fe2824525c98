/*
Package ports defines the driven ports of the form suite.

# Key Interfaces

  - DocumentCache: stores serialized FlowDocuments by input fingerprint, so
    repeated exports of an unchanged flow skip compilation.
*/
package ports
