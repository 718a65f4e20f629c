/*
Package domain contains the core models of a slide deck.

It defines what a slide is, the states the presentation moves through and the
error taxonomy shared by registration, rendering and display. The package is
kept free of I/O and terminal concerns.

# Key Entities

  - Slide: pre-rendered content plus the action executed after it is confirmed.
  - Status: the presentation state machine (NotStarted, Displaying, Finished, Cancelled, Failed).
  - WaitResult: the outcome of waiting for the presenter between slides.
*/
package domain
