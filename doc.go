// Package post implements the trapdoor delay function underlying proofs of
// storage-time, introduced in "Proofs of Storage-Time: Efficiently Checking
// Continuous Data Availability", Giuseppe Ateniese, Long Chen, Mohammad
// Etemad and Qiang Tang, NDSS 2020, DOI https://doi.org/10.14722/ndss.2020.24427.
//
// A party holding the factorization of an RSA modulus runs Store: a chain of
// rounds in which each round MACs the stored data with a rolling challenge
// and derives the next challenge through a delay function, evaluated cheaply
// with the trapdoor exponent. Anyone holding only the public modulus runs
// Prove, which recomputes the identical chain by brute-force sequential
// squaring, taking wall-clock time proportional to 2^T per round. Equal
// commitment pairs from the two paths attest that the data was available
// throughout the delay-bound computation.
package post
