package ordering

/*

# Order-preserving radix key transforms

Each type here is a stateless transform between one native fixed-width key
type and its radix key: an unsigned integer whose numeric ordering matches
the semantic ordering of the native keys. Apply and Restore are mutual
inverses.

The constructions:

  - unsigned integers: the identity; the native bit pattern already orders
    correctly (the "null transform").
  - signed integers: flip the sign bit, turning two's-complement ordering
    into unsigned ordering.
  - IEEE-754 floats: flip the sign bit; for originally negative values
    additionally invert the magnitude bits, so larger-magnitude negatives
    (which have larger raw patterns) order first. Negative zero is
    normalized to positive zero before transforming, so the two zero
    encodings denote one key.

NaN keys are not rejected: a NaN transforms like any other bit pattern
(quiet NaNs with a clear sign bit order after +Inf, sign-set NaNs before
-Inf), and membership is bit-pattern based. Distinct NaN payloads are
distinct keys. Prefer not to use NaN keys.

*/
