package entities

import (
	"errors"
	"strings"
	"testing"

	"os_service_api/internal/domain/valueobjects"
)

func money(t *testing.T, v float64) valueobjects.Money {
	t.Helper()
	m, err := valueobjects.NewMoney(v)
	if err != nil {
		t.Fatalf("money: %v", err)
	}
	return m
}

func qty(t *testing.T, v int) valueobjects.Quantity {
	t.Helper()
	q, err := valueobjects.NewQuantity(v)
	if err != nil {
		t.Fatalf("quantity: %v", err)
	}
	return q
}

func name(t *testing.T, v string) valueobjects.Name {
	t.Helper()
	n, err := valueobjects.NewName(v)
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	return n
}

func newOrder(t *testing.T) ServiceOrder {
	t.Helper()
	o, err := NewServiceOrder("vehicle-1")
	if err != nil {
		t.Fatalf("new order: %v", err)
	}
	return o
}

func TestNewServiceOrder(t *testing.T) {
	t.Run("invalid vehicle", func(t *testing.T) {
		_, err := NewServiceOrder("   ")
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		o := newOrder(t)
		if o.Status != OSStatusRecebida {
			t.Fatalf("expected recebida, got %s", o.Status)
		}
		if o.ID == "" || !strings.HasPrefix(o.Code, "OS-") {
			t.Fatalf("expected generated id and code, got id=%q code=%q", o.ID, o.Code)
		}
		if o.History.CreatedAt.IsZero() {
			t.Fatalf("expected created_at")
		}
		if o.History.ExecutionStartedAt != nil || o.History.FinalizedAt != nil || o.History.DeliveredAt != nil {
			t.Fatalf("expected only created_at to be set")
		}
		if o.StockInteraction.MustReduceStock {
			t.Fatalf("must_reduce_stock should start false")
		}
		if o.StockInteraction.Outcome != StockOutcomePendente {
			t.Fatalf("stock outcome should start pendente, got %s", o.StockInteraction.Outcome)
		}
	})
}

func TestServiceOrder_LineItemRules(t *testing.T) {
	t.Run("duplicate service is a conflict", func(t *testing.T) {
		o := newOrder(t)
		if err := o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err := o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		if !errors.Is(err, ErrServiceAlreadyIncluded) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		if len(o.IncludedServices) != 1 {
			t.Fatalf("expected single service line")
		}
	})

	t.Run("repeated item increments quantity", func(t *testing.T) {
		o := newOrder(t)
		if err := o.AdicionarItem("item-1", name(t, "Filtro"), ItemTypePeca, qty(t, 2), money(t, 20)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := o.AdicionarItem("item-1", name(t, "Filtro"), ItemTypePeca, qty(t, 3), money(t, 20)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(o.IncludedItems) != 1 {
			t.Fatalf("expected single item line, got %d", len(o.IncludedItems))
		}
		if got := o.IncludedItems[0].Quantity.Value(); got != 5 {
			t.Fatalf("expected quantity 5, got %d", got)
		}
	})

	t.Run("removing absent lines is not found", func(t *testing.T) {
		o := newOrder(t)
		if err := o.RemoverServico("svc-x"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if err := o.RemoverItem("item-x"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("mutation allowed in diagnosis", func(t *testing.T) {
		o := newOrder(t)
		if err := o.IniciarDiagnostico(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := o.RemoverServico("svc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mutation rejected after budget", func(t *testing.T) {
		o := newOrder(t)
		_ = o.IniciarDiagnostico()
		_ = o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		if err := o.GerarOrcamento(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := o.AdicionarServico("svc-2", name(t, "Alinhamento"), money(t, 50)); !errors.Is(err, ErrOrderNotOpenForChanges) {
			t.Fatalf("expected ErrOrderNotOpenForChanges, got %v", err)
		}
		if err := o.AdicionarItem("item-1", name(t, "Filtro"), ItemTypePeca, qty(t, 1), money(t, 10)); !errors.Is(err, ErrDomainRule) {
			t.Fatalf("expected domain rule error, got %v", err)
		}
		if err := o.RemoverServico("svc-1"); !errors.Is(err, ErrDomainRule) {
			t.Fatalf("expected domain rule error, got %v", err)
		}
	})
}

func TestServiceOrder_GerarOrcamento(t *testing.T) {
	t.Run("requires diagnosis", func(t *testing.T) {
		o := newOrder(t)
		_ = o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		if err := o.GerarOrcamento(); !errors.Is(err, ErrOrderNotInDiagnosis) {
			t.Fatalf("expected ErrOrderNotInDiagnosis, got %v", err)
		}
		if o.Status != OSStatusRecebida || o.Budget != nil {
			t.Fatalf("failed transition must not mutate the order")
		}
	})

	t.Run("requires at least one line item", func(t *testing.T) {
		o := newOrder(t)
		_ = o.IniciarDiagnostico()
		if err := o.GerarOrcamento(); !errors.Is(err, ErrOrderHasNoLineItems) {
			t.Fatalf("expected ErrOrderHasNoLineItems, got %v", err)
		}
	})

	t.Run("total is services plus items times quantity", func(t *testing.T) {
		o := newOrder(t)
		_ = o.IniciarDiagnostico()
		_ = o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		_ = o.AdicionarItem("item-1", name(t, "Filtro"), ItemTypePeca, qty(t, 2), money(t, 20))
		if err := o.GerarOrcamento(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Budget == nil || o.Budget.TotalPrice.Amount() != 140 {
			t.Fatalf("expected total 140, got %+v", o.Budget)
		}
		if o.Status != OSStatusAguardandoAprovacao {
			t.Fatalf("expected aguardando_aprovacao, got %s", o.Status)
		}
		if o.Budget.CreatedAt.IsZero() || o.Budget.ID == "" {
			t.Fatalf("expected budget id and created_at")
		}
	})

	t.Run("second generation is a conflict", func(t *testing.T) {
		o := newOrder(t)
		_ = o.IniciarDiagnostico()
		_ = o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		_ = o.GerarOrcamento()
		first := o.Budget
		if err := o.GerarOrcamento(); !errors.Is(err, ErrBudgetAlreadyGenerated) {
			t.Fatalf("expected ErrBudgetAlreadyGenerated, got %v", err)
		}
		if o.Budget != first {
			t.Fatalf("budget must stay frozen")
		}
	})
}

func TestServiceOrder_Transitions(t *testing.T) {
	toExecution := func(t *testing.T) ServiceOrder {
		o := newOrder(t)
		_ = o.IniciarDiagnostico()
		_ = o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		_ = o.GerarOrcamento()
		if err := o.AprovarOrcamento(); err != nil {
			t.Fatalf("approve: %v", err)
		}
		return o
	}

	t.Run("approve sets execution start", func(t *testing.T) {
		o := toExecution(t)
		if o.Status != OSStatusEmExecucao {
			t.Fatalf("expected em_execucao, got %s", o.Status)
		}
		if o.History.ExecutionStartedAt == nil {
			t.Fatalf("expected execution_started_at")
		}
	})

	t.Run("disapprove cancels", func(t *testing.T) {
		o := newOrder(t)
		_ = o.IniciarDiagnostico()
		_ = o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		_ = o.GerarOrcamento()
		if err := o.DesaprovarOrcamento(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != OSStatusCancelada {
			t.Fatalf("expected cancelada, got %s", o.Status)
		}
	})

	t.Run("finish and deliver stamp history once", func(t *testing.T) {
		o := toExecution(t)
		if err := o.FinalizarExecucao(); err != nil {
			t.Fatalf("finish: %v", err)
		}
		if o.History.FinalizedAt == nil {
			t.Fatalf("expected finalized_at")
		}
		if err := o.Entregar(); err != nil {
			t.Fatalf("deliver: %v", err)
		}
		if o.History.DeliveredAt == nil {
			t.Fatalf("expected delivered_at")
		}
		if o.Status != OSStatusEntregue {
			t.Fatalf("expected entregue, got %s", o.Status)
		}
	})

	t.Run("illegal edges fail without side effects", func(t *testing.T) {
		o := newOrder(t)
		before := o.Status

		if err := o.AprovarOrcamento(); !errors.Is(err, ErrDomainRule) {
			t.Fatalf("expected domain rule error, got %v", err)
		}
		if err := o.FinalizarExecucao(); !errors.Is(err, ErrOrderNotInExecution) {
			t.Fatalf("expected ErrOrderNotInExecution, got %v", err)
		}
		if err := o.Entregar(); !errors.Is(err, ErrOrderNotFinished) {
			t.Fatalf("expected ErrOrderNotFinished, got %v", err)
		}
		if o.Status != before || o.History.ExecutionStartedAt != nil || o.History.FinalizedAt != nil || o.History.DeliveredAt != nil {
			t.Fatalf("failed transitions must not mutate the order")
		}
	})

	t.Run("cancel is unconditional", func(t *testing.T) {
		o := toExecution(t)
		o.Cancelar()
		if o.Status != OSStatusCancelada {
			t.Fatalf("expected cancelada, got %s", o.Status)
		}
	})
}

func TestServiceOrder_StockReduction(t *testing.T) {
	inExecutionWithItem := func(t *testing.T) ServiceOrder {
		o := newOrder(t)
		_ = o.IniciarDiagnostico()
		_ = o.AdicionarServico("svc-1", name(t, "Revisão"), money(t, 100))
		_ = o.AdicionarItem("item-1", name(t, "Filtro"), ItemTypePeca, qty(t, 2), money(t, 20))
		_ = o.GerarOrcamento()
		_ = o.AprovarOrcamento()
		o.MarcarReducaoEstoqueSolicitada()
		return o
	}

	t.Run("request lists stock-backed items", func(t *testing.T) {
		o := inExecutionWithItem(t)
		req := o.StockReductionRequestFor("corr-1")
		if req.CorrelationID != "corr-1" || req.OSID != o.ID {
			t.Fatalf("unexpected request header: %+v", req)
		}
		if len(req.Items) != 1 || req.Items[0].StockItemID != "item-1" || req.Items[0].Quantity != 2 {
			t.Fatalf("unexpected request items: %+v", req.Items)
		}
	})

	t.Run("resolution is once only", func(t *testing.T) {
		o := inExecutionWithItem(t)
		if !o.ResolverReducaoEstoque(true) {
			t.Fatalf("first resolution should apply")
		}
		if o.StockInteraction.Outcome != StockOutcomeConfirmado {
			t.Fatalf("expected confirmado, got %s", o.StockInteraction.Outcome)
		}
		if o.ResolverReducaoEstoque(false) {
			t.Fatalf("second resolution must be a no-op")
		}
		if o.StockInteraction.Outcome != StockOutcomeConfirmado || o.Status != OSStatusEmExecucao {
			t.Fatalf("duplicate result must not change the order")
		}
	})

	t.Run("failure compensates by cancelling", func(t *testing.T) {
		o := inExecutionWithItem(t)
		if !o.ResolverReducaoEstoque(false) {
			t.Fatalf("resolution should apply")
		}
		if o.StockInteraction.Outcome != StockOutcomeFalhou {
			t.Fatalf("expected falhou, got %s", o.StockInteraction.Outcome)
		}
		if o.Status != OSStatusCancelada {
			t.Fatalf("expected compensation to cancel, got %s", o.Status)
		}
	})

	t.Run("no-op when reservation was never requested", func(t *testing.T) {
		o := newOrder(t)
		if o.ResolverReducaoEstoque(true) {
			t.Fatalf("order without reservation must ignore results")
		}
	})
}
