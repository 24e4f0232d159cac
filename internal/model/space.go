package model

// ParkingSpace describes a physical parking slot.  Spaces are uniquely
// identified by their number, which is the natural key clients use when
// flipping availability.  Rows are created by the schema seed, never by
// this service.
//
// Fields:
//  ID        – primary key identifier.
//  Number    – unique space number painted on the ground.
//  Available – whether the space is currently free.
type ParkingSpace struct {
    ID        uint64 `json:"id"`        // parking_spaces.id
    Number    int    `json:"number"`    // parking_spaces.number
    Available bool   `json:"available"` // parking_spaces.available
}
