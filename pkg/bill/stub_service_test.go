package bill

import "context"

type stubService struct {
	nextId int
	bills  []Bill
}

func newStubService(bills ...Bill) *stubService {
	s := &stubService{}
	for _, b := range bills {
		s.AddBill(context.Background(), b)
	}
	return s
}

func (s *stubService) Bills() []Bill {
	return append([]Bill{}, s.bills...)
}

func (s *stubService) AddBill(ctx context.Context, bill Bill) Bill {
	s.nextId++
	bill.ID = s.nextId
	s.bills = append(s.bills, bill)
	return bill
}

func (s *stubService) UpdateBill(ctx context.Context, id int, patch Patch) (Bill, bool) {
	for i, b := range s.bills {
		if b.ID == id {
			s.bills[i] = patch.Apply(b)
			return s.bills[i], true
		}
	}
	return Bill{}, false
}

func (s *stubService) DeleteBill(ctx context.Context, id int) bool {
	for i, b := range s.bills {
		if b.ID == id {
			s.bills = append(s.bills[:i], s.bills[i+1:]...)
			return true
		}
	}
	return false
}
